package exam

import "fmt"

// LicenseClass identifies one of the three US amateur license exams.
type LicenseClass string

const (
	ClassTechnician LicenseClass = "technician"
	ClassGeneral    LicenseClass = "general"
	ClassExtra      LicenseClass = "extra"
)

// Subelement is one content area of an exam: a fixed number of questions
// drawn on the real exam from a larger published question pool.
type Subelement struct {
	Code          string
	Label         string
	ExamQuestions int
	PoolQuestions int
}

// Structure describes the full exam for one license class.
// PassingScore is the official correct-answer count required to pass;
// it is display-only and plays no part in the readiness formulas.
type Structure struct {
	Class          LicenseClass
	Subelements    []Subelement
	TotalQuestions int
	PassingScore   int
}

// The tables below mirror the NCVEC question pools. One exam question is
// drawn per question group, so ExamQuestions equals the group count of
// each subelement. Never mutated after init.
var structures = map[LicenseClass]Structure{
	ClassTechnician: {
		Class:          ClassTechnician,
		TotalQuestions: 35,
		PassingScore:   26,
		Subelements: []Subelement{
			{"T1", "FCC Rules and station licensee responsibilities", 6, 61},
			{"T2", "Operating procedures", 3, 33},
			{"T3", "Radio wave characteristics and propagation", 3, 33},
			{"T4", "Amateur radio practices and station setup", 2, 23},
			{"T5", "Electrical principles", 4, 46},
			{"T6", "Electrical components and circuits", 4, 44},
			{"T7", "Station equipment and troubleshooting", 4, 43},
			{"T8", "Modulation modes and operating activities", 4, 45},
			{"T9", "Antennas and feed lines", 2, 22},
			{"T0", "Safety", 3, 34},
		},
	},
	ClassGeneral: {
		Class:          ClassGeneral,
		TotalQuestions: 35,
		PassingScore:   26,
		Subelements: []Subelement{
			{"G1", "Commission's rules", 5, 51},
			{"G2", "Operating procedures", 5, 52},
			{"G3", "Radio wave propagation", 3, 33},
			{"G4", "Amateur radio practices", 5, 56},
			{"G5", "Electrical principles", 3, 33},
			{"G6", "Circuit components", 2, 22},
			{"G7", "Practical circuits", 3, 33},
			{"G8", "Signals and emissions", 3, 33},
			{"G9", "Antennas and feed lines", 4, 44},
			{"G0", "Electrical and RF safety", 2, 22},
		},
	},
	ClassExtra: {
		Class:          ClassExtra,
		TotalQuestions: 50,
		PassingScore:   37,
		Subelements: []Subelement{
			{"E1", "Commission's rules", 6, 62},
			{"E2", "Operating practices and procedures", 5, 51},
			{"E3", "Radio wave propagation", 3, 33},
			{"E4", "Amateur practices and measurement", 5, 52},
			{"E5", "Electrical principles", 4, 44},
			{"E6", "Circuit components", 6, 63},
			{"E7", "Practical circuits", 8, 85},
			{"E8", "Signals and emissions", 4, 44},
			{"E9", "Antennas and transmission lines", 8, 86},
			{"E0", "Safety", 1, 11},
		},
	},
}

// StructureFor returns the exam layout for a license class.
func StructureFor(class LicenseClass) (Structure, error) {
	s, ok := structures[class]
	if !ok {
		return Structure{}, fmt.Errorf("unknown license class %q", class)
	}
	return s, nil
}

// ParseClass normalizes a string into a LicenseClass.
func ParseClass(s string) (LicenseClass, error) {
	switch LicenseClass(s) {
	case ClassTechnician, ClassGeneral, ClassExtra:
		return LicenseClass(s), nil
	}
	return "", fmt.Errorf("unknown license class %q", s)
}

// PoolSize returns the total published pool size across all subelements.
func (s Structure) PoolSize() int {
	total := 0
	for _, sub := range s.Subelements {
		total += sub.PoolQuestions
	}
	return total
}

// Subelement looks up one subelement by code.
func (s Structure) Subelement(code string) (Subelement, bool) {
	for _, sub := range s.Subelements {
		if sub.Code == code {
			return sub, true
		}
	}
	return Subelement{}, false
}
