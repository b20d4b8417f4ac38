package feature

// Metadata records one matched feature of an evaluation call: which variant
// was chosen, from which provider, and whether an override forced the
// choice. Entries are appended in selection order and never mutated after
// the call completes.
type Metadata struct {
	FeatureName          string
	ProviderName         string
	VariantID            string
	IsOverridden         bool
	OverrideProviderName string
}
