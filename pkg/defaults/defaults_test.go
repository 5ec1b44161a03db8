package defaults_test

import (
	"strings"
	"testing"

	"github.com/readykit/readykit/pkg/defaults"
)

func TestUserAgent(t *testing.T) {
	ua := defaults.UserAgent("test")
	if !strings.Contains(ua, defaults.Version) {
		t.Errorf("user agent %q missing version %s", ua, defaults.Version)
	}
	if !strings.HasPrefix(ua, "ReadyKit/") {
		t.Errorf("user agent %q missing product prefix", ua)
	}
}

func TestExportGeometry(t *testing.T) {
	if defaults.ViewportWidth != 1280 || defaults.ViewportHeight != 1800 {
		t.Errorf("viewport = %dx%d, want 1280x1800", defaults.ViewportWidth, defaults.ViewportHeight)
	}
	if defaults.ExportDPI < 72 || defaults.ExportDPI > 600 {
		t.Errorf("default DPI %d outside printable range", defaults.ExportDPI)
	}
	if !strings.HasSuffix(defaults.PDFFilename, ".pdf") {
		t.Errorf("filename %q is not a PDF name", defaults.PDFFilename)
	}
}

func TestFeedbackLimits(t *testing.T) {
	if defaults.MaxCommentLength != 2000 {
		t.Errorf("comment cap = %d, want 2000", defaults.MaxCommentLength)
	}
	if defaults.MaxFeedbackScore != 10 {
		t.Errorf("score cap = %d, want 10", defaults.MaxFeedbackScore)
	}
	if defaults.RetentionDays <= 0 {
		t.Error("retention must default to a positive window")
	}
}
