// Package button debounces raw digital input lines into latched Short and
// Long press classifications.
//
// A Debouncer is driven by a periodic Scan (one call per sample tick). A
// release commits a classification when the press lasted more than the short
// threshold; the classification stays latched until it is read with reset or
// until its tick-counted timeout silently reverts it to Idle. A zero timeout
// disables the revert.
package button
