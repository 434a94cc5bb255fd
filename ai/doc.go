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


// Package ai provides abstractions for the AI services used in Saleslens.
//
// This package defines interfaces for text embeddings and sales report
// generation. It follows the dependency inversion principle, allowing the
// core domain and business logic to depend on abstractions rather than
// concrete implementations.
//
// The package is designed around three key interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - InsightGenerator: produces a structured sales one-pager via an LLM
//   - AIProvider: aggregates AI services for convenient initialization
//
// Two implementation sub-packages are provided:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// interface types to enforce abstraction. Test utility constructors
// (mock.NewMockEmbedder, mock.NewMockInsightGenerator) return concrete types
// to enable behavior injection and assertions.
//
// The embedding backend is a process-wide, lazily-initialized, read-only
// resource: it is constructed once, injected everywhere it is needed, and
// never instantiated per call.
package ai
