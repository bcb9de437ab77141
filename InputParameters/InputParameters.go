package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gopoly/families"
)

// Parameters obtained from the YAML input file. ghodss/yaml matches keys through
// the json tags. The node count is keyed "Nodes" since a bare N is a YAML 1.1
// boolean.
type InputParameters1D struct {
	Title           string  `json:"Title"`
	Family          string  `json:"Family"`
	Alpha           float64 `json:"Alpha"`
	Beta            float64 `json:"Beta"`
	Rho             float64 `json:"Rho"`
	N               int     `json:"Nodes"`           // Number of quadrature nodes
	K               int     `json:"K"`               // Number of polynomial degrees evaluated, 0..K-1
	DerivativeOrder int     `json:"DerivativeOrder"` // Highest derivative order evaluated
	Precision       int     `json:"Precision"`       // Significant digits in output files
	RuleType        string  `json:"RuleType"`        // gauss, radau or lobatto
	Left            float64 `json:"Left"`            // Fixed Radau / left Lobatto node
	Right           float64 `json:"Right"`           // Right Lobatto node
	Threads         int     `json:"Threads"`
	RecurrenceFile  string  `json:"RecurrenceFile"` // Recurrence table file used in place of Family
}

// NewInputParameters1D returns the defaults of the reference driver:
// a 100 point Gauss-Legendre rule and the first 15 orthonormal polynomials.
func NewInputParameters1D() (ip *InputParameters1D) {
	ip = &InputParameters1D{
		Title:     "Gauss-Jacobi",
		Family:    "jacobi",
		N:         100,
		K:         15,
		Precision: 16,
		RuleType:  "gauss",
		Left:      -1,
		Right:     1,
	}
	return
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) FamilyParams() families.Params {
	return families.Params{Alpha: ip.Alpha, Beta: ip.Beta, Rho: ip.Rho}
}

// Family resolves the configured family name and parameters.
func (ip *InputParameters1D) NewFamily() (families.Family, error) {
	return families.NewFamilyByName(ip.Family, ip.FamilyParams())
}

// Validate checks the driver level constraints; family parameters are checked
// by the family itself.
func (ip *InputParameters1D) Validate() (err error) {
	switch {
	case ip.N < 1:
		err = fmt.Errorf("N must be >= 1, got %d", ip.N)
	case ip.K < 1:
		err = fmt.Errorf("K must be >= 1, got %d", ip.K)
	case ip.DerivativeOrder < 0:
		err = fmt.Errorf("DerivativeOrder must be >= 0, got %d", ip.DerivativeOrder)
	case ip.Precision < 1 || ip.Precision > 17:
		err = fmt.Errorf("Precision must be in [1, 17], got %d", ip.Precision)
	}
	if err == nil {
		switch ip.RuleType {
		case "gauss", "radau", "lobatto":
		default:
			err = fmt.Errorf("unknown RuleType %q, want gauss, radau or lobatto", ip.RuleType)
		}
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	if ip.RecurrenceFile != "" {
		fmt.Printf("[%s]\t\t\t= Recurrence File\n", ip.RecurrenceFile)
	} else {
		fmt.Printf("[%s]\t\t\t= Family\n", ip.Family)
	}
	fmt.Printf("%8.5f\t\t= Alpha\n", ip.Alpha)
	fmt.Printf("%8.5f\t\t= Beta\n", ip.Beta)
	if ip.Family == "hermite" {
		fmt.Printf("%8.5f\t\t= Rho\n", ip.Rho)
	}
	fmt.Printf("[%d]\t\t\t\t= Nodes\n", ip.N)
	fmt.Printf("[%d]\t\t\t\t= K\n", ip.K)
	fmt.Printf("[%d]\t\t\t\t= Derivative Order\n", ip.DerivativeOrder)
	fmt.Printf("[%s]\t\t\t= Rule Type\n", ip.RuleType)
}
