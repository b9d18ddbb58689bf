// Package domain contains shared domain types used across the ORE sub-packages.
// The set parser lives in domain/ore and the chat command grammar in
// domain/command. This root package holds sentinel errors and the error
// types that the HTTP and chat adapters inspect with errors.Is / errors.As.
package domain
