/*
Package domain contains the core domain models for the Command Assist wizard.

It defines the wizard steps, the navigator state, the catalog records
(platforms, vendors, categories and actions) and the display records handed to
frontends. This package is kept pure and free of external dependencies like
I/O or persistence.

# Key Entities

  - Step: closed set of wizard screens (platform-selection ... vendor-category-result).
  - State: the navigator snapshot (current step, selections, result, history stack).
  - Platform / Vendor: read-only catalog entries.
  - Screen: what the presenter asks a frontend to show for the current step.
  - Input: a user event (select, query, back, reset).
*/
package domain
