// Package indices defines the CSV ingestion targets: their index name,
// field declarations, dataset location and row mapping. Targets are looked
// up by name through a Registry populated by RegisterDefaults.
package indices
