// Copyright 2026 Poiesic Systems
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


// Package ai provides abstractions for the AI services used in MediBot.
//
// Two capabilities are defined as interfaces so the pipeline never
// depends on a concrete backend:
//
//   - Embedder: generates vector embeddings from text
//   - IntentDetector: classifies the conversational intent of a message
//
// Implementation sub-packages:
//
//   - ai/openai: production implementations using OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles
//
// Public constructors in the implementation packages return interface
// types to keep callers decoupled; mock constructors return concrete
// types so tests can inject behavior and assert on call counts.
//
// The intent detector in particular exists in two flavors: a
// network-backed detector (ai/openai) and a local rule-based classifier
// (package intent). Which one drives the pipeline is decided at
// construction time; the pipeline only ever sees the interface.
package ai
