/*
Package session serialises access to live wizard sessions.

A Manager wraps a ports.StateStore with per-session mutexes (reference counted,
so idle sessions hold no lock) and, optionally, a distributed lock for
deployments with several replicas sharing one Redis store.
*/
package session
