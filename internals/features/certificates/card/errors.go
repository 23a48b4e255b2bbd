package card

import "errors"

// ErrAssetUnavailable marks a render-blocking asset failure (photo,
// logo or QR). The render aborts before any canvas is produced; the
// caller surfaces it as a retryable error, nothing is retried here.
var ErrAssetUnavailable = errors.New("asset unavailable")
