// Copyright 2025 Vidyasetu Labs
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


// Package ai defines the embedding abstraction used by the ranking pipeline.
//
// The Embedder interface decouples the pipeline from any particular embedding
// service. The openai subpackage implements it against OpenAI-compatible
// endpoints; the mock subpackage provides a deterministic test double.
//
// Embedding failures are never fatal to a search request: callers degrade to
// lexical-only ranking when an Embedder returns an error or times out.
package ai
