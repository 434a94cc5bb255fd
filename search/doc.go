// Copyright 2025 Saleslens Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search scores queries against the section embeddings of a
// company profile.
//
// The Engine type implements three operations on top of one cosine
// similarity primitive:
//   - Search: raw per-section scoring against an arbitrary query
//   - MatchProductCategory: bucketed relevance matching for a product category
//   - FindSemanticMentions: unnamed competitor references via comparative language
//
// All operations are read-only over the profile and degrade to empty
// results when the embedding backend is unavailable.
package search
