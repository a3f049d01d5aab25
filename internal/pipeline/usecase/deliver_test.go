package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/models"
	"github.com/clipfetch/clipfetch-bot/pkg/utils"
)

func TestSelectDelivery(t *testing.T) {
	limits := config.LimitsConfig{
		HardLimitMB:  2000,
		SafeLimitMB:  1900,
		VideoLimitMB: 50,
	}

	cases := []struct {
		name   string
		sizeMB int64
		want   models.DeliveryKind
	}{
		{"small clip goes inline", 10, models.DeliveryVideo},
		{"exactly at inline threshold goes inline", 50, models.DeliveryVideo},
		{"medium file goes as document", 100, models.DeliveryDocument},
		{"just under hard ceiling goes as document", 2000, models.DeliveryDocument},
		{"over hard ceiling is rejected", 2500, models.DeliveryRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectDelivery(utils.MBToBytes(tc.sizeMB), limits)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelectDeliveryBoundaryBytes(t *testing.T) {
	limits := config.LimitsConfig{HardLimitMB: 2000, SafeLimitMB: 1900, VideoLimitMB: 50}

	assert.Equal(t, models.DeliveryDocument, SelectDelivery(utils.MBToBytes(50)+1, limits))
	assert.Equal(t, models.DeliveryRejected, SelectDelivery(utils.MBToBytes(2000)+1, limits))
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "<b>My Clip</b>", Caption("My Clip"))
	assert.Equal(t, "Video", Caption(""))
	assert.Equal(t, "<b>a &lt;b&gt; &amp; c</b>", Caption("a <b> & c"))
}
