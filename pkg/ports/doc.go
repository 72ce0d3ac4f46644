/*
Package ports defines the driven ports (interfaces) for the Command Assist wizard.

These interfaces decouple the core logic from external implementations, allowing
the wizard to work with various catalogs, storage backends and narration sinks.

# Key Interfaces

  - Catalog: read-only platform and vendor lookups.
  - StateStore: Responsible for persisting and loading live session State.
  - DistributedLocker: Provides distributed locking for handling concurrent session access.
  - Narrator: fire-and-forget spoken feedback.
*/
package ports
