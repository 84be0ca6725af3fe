package segment

import (
	"strings"
	"testing"
)

func TestSplit_UnderlinedHeading(t *testing.T) {
	input := strings.Join([]string{
		"Experience",
		"----------",
		"Senior Engineer",
		"- Built things",
	}, "\n")

	s := New(DefaultConfig())
	segs := s.Split(input)

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Header != "Experience" {
		t.Errorf("expected header %q, got %q", "Experience", segs[0].Header)
	}
	if segs[0].Separator != "----------" {
		t.Errorf("expected separator line to be captured, got %q", segs[0].Separator)
	}
	want := []string{"Senior Engineer", "- Built things"}
	if len(segs[0].Body) != len(want) {
		t.Fatalf("expected body %v, got %v", want, segs[0].Body)
	}
	for i := range want {
		if segs[0].Body[i] != want[i] {
			t.Errorf("body[%d]: expected %q, got %q", i, want[i], segs[0].Body[i])
		}
	}
}

func TestSplit_AllCapsHeading(t *testing.T) {
	input := "SKILLS\nGo, Python\n\nEDUCATION\nBS Computer Science"

	s := New(DefaultConfig())
	segs := s.Split(input)

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Header != "SKILLS" || segs[1].Header != "EDUCATION" {
		t.Errorf("unexpected headers: %q, %q", segs[0].Header, segs[1].Header)
	}
	if segs[0].OrderIndex != 0 || segs[1].OrderIndex != 1 {
		t.Errorf("expected sequential order indexes, got %d, %d", segs[0].OrderIndex, segs[1].OrderIndex)
	}
}

func TestSplit_ImplicitHeaderSegment(t *testing.T) {
	input := strings.Join([]string{
		"Jane Smith",
		"jane@example.com",
		"",
		"EXPERIENCE",
		"Engineer",
	}, "\n")

	s := New(DefaultConfig())
	segs := s.Split(input)

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Header != ImplicitHeader {
		t.Errorf("expected implicit header segment, got %q", segs[0].Header)
	}
	if segs[0].HeaderLine != "" {
		t.Errorf("implicit segment should have no raw heading line, got %q", segs[0].HeaderLine)
	}
	if len(segs[0].Body) != 3 {
		t.Errorf("expected 3 leading lines in implicit segment, got %v", segs[0].Body)
	}
}

func TestSplit_BulletNeverHeading(t *testing.T) {
	// An ALL-CAPS line with a bullet marker keeps its bullet reading.
	input := "PROJECTS\n- CAD TOOL\n- OTHER TOOL"

	s := New(DefaultConfig())
	segs := s.Split(input)

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if len(segs[0].Body) != 2 {
		t.Errorf("expected bullets to stay in body, got %v", segs[0].Body)
	}
}

func TestSplit_LongLineNotHeading(t *testing.T) {
	long := strings.ToUpper(strings.Repeat("shouting ", 10))
	input := "INTRO\n" + long

	s := New(DefaultConfig())
	segs := s.Split(input)

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if len(segs[0].Body) != 1 || segs[0].Body[0] != long {
		t.Errorf("expected long caps line in body, got %v", segs[0].Body)
	}
}

func TestSplit_NoHeadingsIsUnstructured(t *testing.T) {
	input := "just some prose\nwith no structure at all"

	s := New(DefaultConfig())
	segs := s.Split(input)

	if len(segs) != 1 {
		t.Fatalf("expected exactly 1 segment, got %d", len(segs))
	}
	if segs[0].Header != UnstructuredHeader {
		t.Errorf("expected %q header, got %q", UnstructuredHeader, segs[0].Header)
	}
	if len(segs[0].Body) != 2 {
		t.Errorf("expected both lines retained, got %v", segs[0].Body)
	}
}

func TestSplit_ReconstructionIsExact(t *testing.T) {
	input := strings.Join([]string{
		"Jane Smith",
		"jane@example.com | (555) 123-4567",
		"",
		"Summary",
		"-------",
		"Engineer who writes parsers.",
		"",
		"SKILLS",
		"Languages: Go, Python",
		"",
		"Random Trailing Section",
		"_______________________",
		"leftover text",
	}, "\n")

	s := New(DefaultConfig())
	segs := s.Split(input)

	var rebuilt []string
	for _, seg := range segs {
		rebuilt = append(rebuilt, seg.Lines()...)
	}
	if got, want := strings.Join(rebuilt, "\n"), input; got != want {
		t.Errorf("reconstruction mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSplit_CRLFNormalized(t *testing.T) {
	input := "SKILLS\r\nGo\r\n"

	s := New(DefaultConfig())
	segs := s.Split(input)

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if len(segs[0].Body) != 1 || segs[0].Body[0] != "Go" {
		t.Errorf("expected normalized body [Go], got %v", segs[0].Body)
	}
}

func TestSplit_HeadingLengthConfigurable(t *testing.T) {
	s := New(Config{MaxHeadingLength: 4})
	segs := s.Split("SKILLS\nGo")

	// "SKILLS" is 6 runes, above the configured ceiling.
	if segs[0].Header != UnstructuredHeader {
		t.Errorf("expected heading rejected by threshold, got header %q", segs[0].Header)
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	s := New(DefaultConfig())
	segs := s.Split("")

	if len(segs) != 1 {
		t.Fatalf("expected 1 degenerate segment, got %d", len(segs))
	}
	if segs[0].Header != UnstructuredHeader {
		t.Errorf("expected %q, got %q", UnstructuredHeader, segs[0].Header)
	}
}
