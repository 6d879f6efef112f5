// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

const (
	CodeUnknownFatal     = "P0000"
	CodeFileNotFound     = "P0001"
	CodePermissionDenied = "P0002"
	CodeParseFailed      = "P0003"
	CodeTrailingInput    = "P0004"
	CodeEncodeFailed     = "P0005"
	CodeUnsupportedInput = "P0006"
)

var (
	// Codes listed here are recorded by a Reporter without stopping the
	// current run. A failed document does not prevent the others from being
	// parsed.
	defaultNonFatal = map[string]bool{
		CodeParseFailed:   true,
		CodeTrailingInput: true,
	}
)
