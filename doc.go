// Package generator provides lazy, pull-based sequence generators built
// on top of Go's goroutines for the suspension and resuming of producer
// functions.
//
// A generator function receives a Promise and produces values one at a
// time by calling its Yield method, suspending between each. The caller
// drives the sequence through an Iterator obtained from Begin: each
// advance resumes the producer until it yields its next value or
// finishes. Control passes synchronously between exactly one of the
// consumer and the producer at a time; there is no parallel execution
// and no buffering beyond the single value in flight.
//
// A generator function is suspended before its first instruction runs,
// so invoking it through New performs no work. The returned Generator
// exclusively owns the suspended producer and must be released with
// Stop unless iteration is known to have run it to completion.
package generator
