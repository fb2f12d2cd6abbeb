// Package trace defines the domain types for address trace results.
//
// This package is the serialization boundary between ChainScope and the
// collaborator tracing service. The service computes risk scores and
// samples the transaction neighborhood of an address; ChainScope consumes
// the result and turns it into pixels.
//
// # Core Types
//
//   - [Transaction]: a single transfer between two addresses
//   - [Result]: an address trace (address, score, flags, transactions)
//   - [Report]: a generated risk report for an address
//
// # Serialization
//
// Results use a plain JSON format:
//
//	{
//	  "address": "0xabc...",
//	  "risk_score": 42.5,
//	  "flags": ["mixer_proximity"],
//	  "transactions": [{"txid": "...", "from_address": "...", ...}]
//	}
//
// Common operations:
//
//	res, _ := trace.ReadResultFile("trace.json")   // File → Result
//	trace.WriteResultFile(res, "out.json")         // Result → File
//	data, _ := trace.MarshalResult(res)            // Result → []byte
//	res, _ := trace.UnmarshalResult(data)          // []byte → Result
//
// # Display Elision
//
// [ElideAddress] and [ElideTxID] implement the uniform elision rule used
// everywhere an address or transaction ID is displayed: long values keep
// a head and tail around a single ellipsis rune.
//
// # Concurrency
//
// All types are plain values; functions are safe for concurrent use.
package trace
