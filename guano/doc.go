// SPDX-License-Identifier: EPL-2.0

// Package guano reads and writes GUANO, the "Grand Unified Acoustic
// Notation Ontology" metadata block used by bat detectors and analysis
// software.
//
// A GUANO block is UTF-8 text made of "Namespace|Key: Value" lines. Keys
// without a namespace belong to the well-known default namespace, and the
// first line is always "GUANO|Version: 1.0":
//
//	GUANO|Version: 1.0
//	Timestamp: 2017-07-12T20:36:45
//	ZCANT|Amplitudes: AAAAAAAA8D8=
//
// Anabat sequence files embed a GUANO block between the fixed header and
// the dot data. This package only understands the container; the Anabat
// decoder reaches it through AmplitudeParser.
package guano
