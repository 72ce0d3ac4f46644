/*
Package catalog is the read-only lookup store of platforms and vendors.

The default catalog is embedded from data/catalog.yaml. Alternative catalogs can
be loaded from a file with the same schema; unknown keys are rejected so typos
surface at load time rather than as missing commands.
*/
package catalog
