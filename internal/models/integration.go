package models

import (
	"strings"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/keys"
)

// Integration identifies one of the two OAuth-authorized cloud services.
type Integration int

const (
	IntegrationYouTube Integration = iota
	IntegrationGCS
)

// AllIntegrations lists every integration in prompt order.
var AllIntegrations = []Integration{IntegrationYouTube, IntegrationGCS}

// String returns the display name.
func (i Integration) String() string {
	switch i {
	case IntegrationYouTube:
		return "YouTube"
	case IntegrationGCS:
		return "Google Cloud Storage"
	default:
		return "unknown"
	}
}

// Scope returns the OAuth scope requested for the integration.
func (i Integration) Scope() string {
	if i == IntegrationGCS {
		return consts.GCSScope
	}
	return consts.YouTubeUploadScope
}

// TokenFile returns the token filename inside the credentials directory.
func (i Integration) TokenFile() string {
	if i == IntegrationGCS {
		return consts.GCSTokenFile
	}
	return consts.YouTubeTokenFile
}

// ParseAuthTarget maps "auth" arguments (names or menu numbers) onto integrations.
func ParseAuthTarget(s string) ([]Integration, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case keys.AuthTargetYouTube, "1", "yt":
		return []Integration{IntegrationYouTube}, true
	case keys.AuthTargetGCS, "2", "storage":
		return []Integration{IntegrationGCS}, true
	case keys.AuthTargetAll, "3", "both", "":
		return AllIntegrations, true
	}
	return nil, false
}
