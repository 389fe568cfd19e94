package certigenius

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/naina18075-cpu/certigenius/internal/fileutil"
)

// Page geometry in pixels, landscape. Every capture and every PDF page uses
// these dimensions.
const (
	PageWidthPx  = 1000
	PageHeightPx = 707
)

// Capture parameters.
const (
	captureScale   = 1.5 // device scale factor of the screenshot
	captureQuality = 85  // JPEG quality

	// settleDelay is the synchronization barrier between loading the surface
	// and capturing it. Capturing earlier risks stale or partially painted
	// content; this is a required pause, not a retry loop.
	settleDelay = 250 * time.Millisecond
)

// defaultCaptureTimeout bounds a single page load.
const defaultCaptureTimeout = 30 * time.Second

// surfaceCapturer rasterizes a rendered certificate layout into a JPEG
// image. Implementations own the external rendering surface.
type surfaceCapturer interface {
	Capture(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ surfaceCapturer = (*rodCapturer)(nil)

// rodCapturer captures layouts with headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodCapturer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodCapturer creates a rodCapturer with the given page-load timeout.
func newRodCapturer(timeout time.Duration) *rodCapturer {
	return &rodCapturer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (c *rodCapturer) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (c *rodCapturer) Close() error {
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}

// Capture writes the layout to a temp file, opens it at the fixed
// certificate viewport, waits for load plus the settle delay, and takes a
// JPEG screenshot of the surface.
func (c *rodCapturer) Capture(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             PageWidthPx,
		Height:            PageHeightPx,
		DeviceScaleFactor: captureScale,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	// Wait for page to load with timeout from context or default
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Settle barrier: let the surface catch up before the shot.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(settleDelay):
	}

	quality := captureQuality
	data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: &quality,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}

	return data, nil
}
