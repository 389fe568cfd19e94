package certigenius

import "errors"

// Sentinel errors for library operations.
var (
	// Template and layout errors.
	ErrInvalidFontScale   = errors.New("font size scale must be positive")
	ErrInvalidOverlaySize = errors.New("overlay width and height must be positive")
	ErrInvalidOverlayKind = errors.New("invalid overlay kind")
	ErrLayoutRender       = errors.New("layout rendering failed")

	// Recipient store errors.
	ErrMissingName       = errors.New("recipient name cannot be empty")
	ErrRecipientNotFound = errors.New("no certificate found for this ID or name")

	// Surface capture errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrCapture        = errors.New("surface capture failed")

	// Export sink errors.
	ErrPDFEncode     = errors.New("PDF encoding failed")
	ErrArchiveEncode = errors.New("archive encoding failed")

	// Batch export errors.
	ErrNoRecipients    = errors.New("no recipients to export")
	ErrUnknownSinkKind = errors.New("unknown export sink kind")
	ErrExportInFlight  = errors.New("an export is already in flight")
	ErrExportCancelled = errors.New("export cancelled")

	// AI drafting errors.
	ErrMissingTopic  = errors.New("draft topic cannot be empty")
	ErrMissingAPIKey = errors.New("API key is missing")
	ErrDraftFailed   = errors.New("failed to generate text using AI")
)
