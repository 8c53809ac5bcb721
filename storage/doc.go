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


// Package storage provides the storage abstraction layer for scholarrank.
//
// This package defines repository interfaces that decouple storage
// implementation from ranking logic. It allows different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - CatalogRepository: catalog entries plus filtered vector search
//   - InteractionRepository: the append-only interaction event log
//
// Public constructors return interfaces to prevent accidental coupling to
// BadgerDB specifics and to let tests substitute in-memory implementations.
//
// # Append-only interaction log
//
// InteractionRepository intentionally exposes no update or delete operation.
// Interaction events carry their initial weight and timestamp; decay is
// recomputed at read time, so the log alone fully determines every
// personalization score ever produced.
//
// # Thread Safety
//
// All repository implementations must be thread-safe. The catalog is
// read-mostly: readers see either the old or the new snapshot of an entry,
// never a partially-written one.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support.
package storage
