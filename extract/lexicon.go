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


package extract

import "slices"

// defaultLexicon is the built-in set of symptom phrases. Ordering
// matters: extraction results are reported in lexicon order.
var defaultLexicon = []string{
	"pain", "ache", "fever", "cough", "headache", "nausea", "vomiting",
	"diarrhea", "fatigue", "tired", "dizzy", "weak", "sore", "swollen",
	"rash", "itch", "sneeze", "congestion", "runny nose", "sore throat",
	"shortness of breath", "chest pain", "palpitations", "anxiety",
	"depression", "sad", "worry", "stress", "blurred vision", "thirst",
	"frequent urination", "weight loss", "weight gain", "insomnia",
	"sleep problems", "numbness", "tingling", "bleeding", "bruising",
	"confusion", "memory problems", "difficulty concentrating",
}

// defaultNegations are the words that suppress a symptom phrase when
// found shortly before it.
var defaultNegations = []string{
	"no", "not", "never", "without", "none", "don't", "doesn't", "didn't",
}

// DefaultLexicon returns a copy of the built-in symptom lexicon.
func DefaultLexicon() []string {
	return slices.Clone(defaultLexicon)
}

// DefaultNegations returns a copy of the built-in negation token set.
func DefaultNegations() []string {
	return slices.Clone(defaultNegations)
}
