/*
Package observability turns navigator lifecycle events into Prometheus metrics and
structured log lines.

Both are plain domain.LifecycleHooks, so they compose with any other hooks through
LifecycleHooks.Merge and never influence navigation.
*/
package observability
