// Package mask implements the test-context mask-option family described in
// SPEC_FULL.md §4.5 (C6), grounded on
// original_source/PhdTester/phdTester/masks.py: each mask-option decides,
// per candidate value, whether it is compliant — some inspect only the
// value itself (Equals, InSet, IsNull...), others need the whole candidate
// set (ConstantOverSet) or a late-bound parameter the caller supplies
// through SetParams (EqualsTo).
package mask
