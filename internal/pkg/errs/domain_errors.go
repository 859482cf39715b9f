package errs

// Sentinel errors shared by the usecase layers
var (
	// Cart session errors
	ErrCartNotFound = New("cart not found")

	// Token errors
	ErrInvalidSession = New("invalid cart session")

	// Scheduler errors
	ErrSchedulerAlreadyRunning = New("promotion scheduler already running")
	ErrInvalidPromotionTiming  = New("invalid promotion timing")

	// Catalog errors
	ErrCatalogInvalid = New("invalid catalog definition")
)
