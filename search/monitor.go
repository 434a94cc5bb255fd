package search

import "github.com/saleslens/saleslens/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	QueryEmbedded(dimensions int)
	SectionScored(section core.SectionName, score float32)
	SectionMatched(section core.SectionName, score float32)
	Finish(results map[core.SectionName]core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                     {}
func (n *noopMonitor) QueryEmbedded(_ int)                                {}
func (n *noopMonitor) SectionScored(_ core.SectionName, _ float32)        {}
func (n *noopMonitor) SectionMatched(_ core.SectionName, _ float32)       {}
func (n *noopMonitor) Finish(_ map[core.SectionName]core.SearchResult)    {}
