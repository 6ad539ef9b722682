// SPDX-License-Identifier: MIT

package namespace

// Namespace codes that carry meaning in the mapping rules.
const (
	UP    = "UP"
	HGNC  = "HGNC"
	FPLX  = "FPLX"
	SFAM  = "SFAM"
	SCOMP = "SCOMP"
)

// BEL namespace file locations.
const (
	HGNCURL  = "https://arty.scai.fraunhofer.de/artifactory/bel/namespace/hgnc/hgnc-20180215.belns"
	FPLXURL  = "https://raw.githubusercontent.com/sorgerlab/famplex/1b7e14ec0fd02ee7ed71514c6e267f57d5641a4b/export/famplex.belns"
	SFAMURL  = "https://arty.scai.fraunhofer.de/artifactory/bel/namespace/selventa-protein-families/selventa-protein-families-20170725.belns"
	SCOMPURL = "https://arty.scai.fraunhofer.de/artifactory/bel/namespace/selventa-named-complexes/selventa-named-complexes-20170725.belns"
)

// identifierPatterns maps FamPlex equivalence namespace codes to identifiers.org
// style keys and the identifier syntax of each.
var identifierPatterns = map[string]Pattern{
	"ECCODE": {Key: "eccode", Expr: `^\d+\.-\.-\.-|\d+\.\d+\.-\.-|\d+\.\d+\.\d+\.-|\d+\.\d+\.\d+\.(n)?\d+$`},
	"GO":     {Key: "go", Expr: `^GO:\d{7}$`},
	"IP":     {Key: "interpro", Expr: `^IPR\d{6}$`},
	"MESH":   {Key: "mesh", Expr: `^(C|D)\d{6}$`},
	"NCIT":   {Key: "ncit", Expr: `^C\d+$`},
	"PF":     {Key: "pfam", Expr: `^PF\d{5}$`},
	"RE":     {Key: "reactome", Expr: `(^R-[A-Z]{3}-\d+(-\d+)?(\.\d+)?$)|(^REACT_\d+(\.\d+)?$)`},
}

// The registries are compiled once and shared; Registry has no mutators.
var (
	relations = MustNew(map[string]string{
		HGNC: HGNCURL,
		FPLX: FPLXURL,
	}, nil)
	equivalences = MustNew(map[string]string{
		SFAM:  SFAMURL,
		SCOMP: SCOMPURL,
		FPLX:  FPLXURL,
	}, identifierPatterns)
)

// Relations returns the registry declared by relation graphs: HGNC and FPLX.
func Relations() *Registry { return relations }

// Equivalences returns the registry declared by equivalence graphs: the SFAM,
// SCOMP and FPLX namespace files plus the seven identifier patterns.
func Equivalences() *Registry { return equivalences }

// IsFamilyComplexAlias reports whether code is one of the Selventa family/complex
// codes that collapse onto SFAM or SCOMP depending on the node kind.
func IsFamilyComplexAlias(code string) bool {
	return code == SFAM || code == SCOMP
}
