package server

import "errors"

// ErrExportInProgress indicates a PDF export was requested while another
// one is still running. Exports are serialized because each drives its
// own headless browser.
var ErrExportInProgress = errors.New("server: an export is already in progress")
