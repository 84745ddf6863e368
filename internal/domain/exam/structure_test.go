package exam_test

import (
	"testing"

	"github.com/hamready/backend/internal/domain/exam"
)

func TestStructureFor_KnownClasses(t *testing.T) {
	cases := []struct {
		class          exam.LicenseClass
		totalQuestions int
		passingScore   int
	}{
		{exam.ClassTechnician, 35, 26},
		{exam.ClassGeneral, 35, 26},
		{exam.ClassExtra, 50, 37},
	}

	for _, c := range cases {
		s, err := exam.StructureFor(c.class)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", c.class, err)
		}
		if s.TotalQuestions != c.totalQuestions {
			t.Errorf("%s: expected %d total questions, got %d", c.class, c.totalQuestions, s.TotalQuestions)
		}
		if s.PassingScore != c.passingScore {
			t.Errorf("%s: expected passing score %d, got %d", c.class, c.passingScore, s.PassingScore)
		}
	}
}

func TestStructureFor_UnknownClass(t *testing.T) {
	if _, err := exam.StructureFor("novice"); err == nil {
		t.Fatal("expected error for unknown license class")
	}
}

func TestSubelementWeightsSumToExamTotal(t *testing.T) {
	for _, class := range []exam.LicenseClass{exam.ClassTechnician, exam.ClassGeneral, exam.ClassExtra} {
		s, err := exam.StructureFor(class)
		if err != nil {
			t.Fatal(err)
		}

		sum := 0
		for _, sub := range s.Subelements {
			sum += sub.ExamQuestions
		}
		if sum != s.TotalQuestions {
			t.Errorf("%s: subelement weights sum to %d, exam has %d questions", class, sum, s.TotalQuestions)
		}
	}
}

func TestSubelementDataIsSane(t *testing.T) {
	for _, class := range []exam.LicenseClass{exam.ClassTechnician, exam.ClassGeneral, exam.ClassExtra} {
		s, _ := exam.StructureFor(class)

		seen := make(map[string]bool)
		for _, sub := range s.Subelements {
			if seen[sub.Code] {
				t.Errorf("%s: duplicate subelement code %s", class, sub.Code)
			}
			seen[sub.Code] = true

			if sub.ExamQuestions <= 0 {
				t.Errorf("%s/%s: non-positive exam questions", class, sub.Code)
			}
			if sub.PoolQuestions < sub.ExamQuestions {
				t.Errorf("%s/%s: pool (%d) smaller than exam draw (%d)", class, sub.Code, sub.PoolQuestions, sub.ExamQuestions)
			}
		}
	}
}

func TestParseClass(t *testing.T) {
	if _, err := exam.ParseClass("general"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := exam.ParseClass("advanced"); err == nil {
		t.Error("expected error for retired license class")
	}
}

func TestSubelementLookup(t *testing.T) {
	s, _ := exam.StructureFor(exam.ClassTechnician)

	sub, ok := s.Subelement("T5")
	if !ok {
		t.Fatal("expected to find T5")
	}
	if sub.ExamQuestions != 4 {
		t.Errorf("expected 4 exam questions for T5, got %d", sub.ExamQuestions)
	}

	if _, ok := s.Subelement("G1"); ok {
		t.Error("did not expect to find G1 in the technician exam")
	}
}
