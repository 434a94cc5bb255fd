// Package report renders sales intelligence one-pagers.
//
// The Generator feeds collected site content through the insight backend
// and lays the result out as markdown in a fixed section order, merging
// in the competitor analysis between strategy and leadership.
package report
