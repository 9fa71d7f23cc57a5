package detect

// Provenance records which extraction pass produced a candidate
type Provenance string

const (
	ProvenanceProduct   Provenance = "product"   // Standalone product-term pass
	ProvenanceComposite Provenance = "composite" // Animal-near-product pass
	ProvenanceAnimal    Provenance = "animal"    // Standalone animal/bird pass
)

// Candidate is a raw lowercase string pulled from the scan text. Candidates
// live only within a single Detect call.
type Candidate struct {
	Raw        string
	Provenance Provenance
	Product    string // Product component of a composite candidate
}
