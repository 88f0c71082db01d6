// Package detect finds weakness patterns in passwords.
//
// Each Detector reports one kind of pattern. A Registry runs a fixed list of
// detectors in order and concatenates their matches without merging or
// deduplicating them, because the number of matches feeds into scoring.
//
// Detection order for the default registry:
//
//	keyboard, sequence, repetition, date, common_word, number_sequence, year_pattern
package detect
