// Package protodetect classifies the application-layer protocol of a byte
// stream from its first few dozen bytes, without allocating, copying, or
// blocking. Callers assemble a DetectionChain from the protocols package's
// detectors via BuilderTCP or BuilderUDP, then call Detect on each read.
//
// The core (this package and protocols) never touches a socket: reading
// bytes, retrying on NeedMoreData, and logging are the caller's job. This
// module contains no listener or example program.
package protodetect
