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

// Package collector scrapes company websites into structured text.
//
// The Collector fetches a company homepage plus its leadership, careers,
// investor-relations and press sub-pages, and flattens them into a
// marker-delimited blob (COMPANY DESCRIPTION, ABOUT/MISSION, and so on)
// that the profile package extracts sections from. HTML handling is
// regex-based text recovery, not DOM parsing; the downstream consumer is
// an embedding model, which is indifferent to markup fidelity.
//
// Fetching is polite: browser-like headers, a 15 second timeout, and a
// shared rate limiter across all requests.
package collector
