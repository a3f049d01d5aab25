package models

import "time"

// Platform is the recognized source of a media URL.
type Platform string

const (
	PlatformYouTube     Platform = "YouTube"
	PlatformInstagram   Platform = "Instagram"
	PlatformUnsupported Platform = "Unsupported"
)

// DeliveryKind is the outbound representation chosen for a finished artifact.
type DeliveryKind string

const (
	DeliveryVideo    DeliveryKind = "video"
	DeliveryDocument DeliveryKind = "document"
	DeliveryRejected DeliveryKind = "rejected"
)

// Job is one end-to-end request to fetch and deliver a video. It is mutated
// only by the pipeline orchestrator as the request advances through stages;
// WorkDir and everything inside it is removed when processing ends, on every
// exit path.
type Job struct {
	ID           string
	URL          string
	Platform     Platform
	ChatID       int64
	WorkDir      string
	ArtifactPath string
	Title        string
	Delivery     DeliveryKind
	CreatedAt    time.Time
}

// Artifact is a media file on scratch storage, produced by extraction or by
// a single shrink attempt. Height and CRF are zero for extracted artifacts.
type Artifact struct {
	Path   string
	Size   int64
	Height int
	CRF    int
}
