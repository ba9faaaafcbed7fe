package minicube

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

// sampleStates returns a mix of reachable and arbitrary valid states.
func sampleStates(t *testing.T) []State {
	t.Helper()

	arbitrary, err := FromRaw([]int{7, 6, 5, 4, 3, 2, 1, 0}, []int{1, 2, 0, 1, 2, 0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	twisted, err := FromRaw([]int{0, 1, 2, 3, 4, 5, 6, 7}, []int{1, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	scrambled, err := ApplySequence(Identity(), "R U R' U R U2 R' F R' F' U'")
	if err != nil {
		t.Fatal(err)
	}

	return []State{Identity(), arbitrary, twisted, scrambled}
}

func assertState(t *testing.T, label string, s State, perm, orient []int) {
	t.Helper()
	if !reflect.DeepEqual(s.Permutation(), perm) {
		t.Errorf("%s: permutation = %v, want %v", label, s.Permutation(), perm)
	}
	if !reflect.DeepEqual(s.Orientation(), orient) {
		t.Errorf("%s: orientation = %v, want %v", label, s.Orientation(), orient)
	}
}

func TestEmptySequenceIsIdentity(t *testing.T) {
	for _, seq := range []string{"", "   ", "\t\n"} {
		s, err := ApplySequence(Identity(), seq)
		if err != nil {
			t.Fatalf("empty sequence %q failed: %v", seq, err)
		}
		if s != Identity() {
			t.Errorf("empty sequence %q should leave identity unchanged", seq)
		}
	}
}

func TestSingleMoves(t *testing.T) {
	cases := []struct {
		token  string
		perm   []int
		orient []int
	}{
		{"R", []int{4, 0, 2, 3, 5, 1, 6, 7}, []int{2, 1, 0, 0, 1, 2, 0, 0}},
		{"U", []int{1, 2, 3, 0, 4, 5, 6, 7}, []int{0, 0, 0, 0, 0, 0, 0, 0}},
		{"F", []int{3, 1, 2, 7, 0, 5, 6, 4}, []int{1, 0, 0, 2, 2, 0, 0, 1}},
	}

	for _, tc := range cases {
		s, err := ApplyMove(Identity(), tc.token)
		if err != nil {
			t.Fatalf("%s failed: %v", tc.token, err)
		}
		assertState(t, tc.token, s, tc.perm, tc.orient)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s, err := ApplyMove(Identity(), "R")
	if err != nil {
		t.Fatal(err)
	}
	if s.IsSolved() {
		t.Error("State should not be solved after R move")
	}
}

func TestInverseLaw(t *testing.T) {
	for _, start := range sampleStates(t) {
		for _, f := range Faces {
			face := string(f)
			s, err := ApplyMove(start, face)
			if err != nil {
				t.Fatal(err)
			}
			s, err = ApplyMove(s, face+"'")
			if err != nil {
				t.Fatal(err)
			}
			if s != start {
				t.Errorf("%s %s' should be a no-op on %v", face, face, start)
			}
		}
	}
}

func TestDoubleLaw(t *testing.T) {
	for _, start := range sampleStates(t) {
		for _, f := range Faces {
			face := string(f)
			double, err := ApplyMove(start, face+"2")
			if err != nil {
				t.Fatal(err)
			}
			twice, err := ApplySequence(start, face+" "+face)
			if err != nil {
				t.Fatal(err)
			}
			if double != twice {
				t.Errorf("%s2 should equal %s %s", face, face, face)
			}
		}
	}
}

func TestFourQuarterTurnsReturnToStart(t *testing.T) {
	for _, f := range Faces {
		face := string(f)
		s, err := ApplySequence(Identity(), strings.Repeat(face+" ", 4))
		if err != nil {
			t.Fatal(err)
		}
		if !s.IsSolved() {
			t.Errorf("%s x 4 should return to solved", face)
			t.Log(s.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	s := Identity()
	var err error
	for i := 0; i < 6; i++ {
		s, err = s.Apply(SexyMove...)
		if err != nil {
			t.Fatal(err)
		}
		if i < 5 && s.IsSolved() {
			t.Errorf("should not be solved after %d repetitions", i+1)
		}
	}
	if !s.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(s.String())
	}
}

func TestClosureAndTwistConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tokens := []string{}
	for _, f := range Faces {
		tokens = append(tokens, string(f), string(f)+"'", string(f)+"2")
	}

	for _, start := range sampleStates(t) {
		startTwist := start.Twist()
		s := start
		for i := 0; i < 500; i++ {
			token := tokens[rng.Intn(len(tokens))]
			next, err := ApplyMove(s, token)
			if err != nil {
				t.Fatalf("%s failed: %v", token, err)
			}
			if !next.valid() {
				t.Fatalf("%s produced an invalid state: %v", token, next)
			}
			if next.Twist() != startTwist {
				t.Fatalf("%s changed total twist from %d to %d", token, startTwist, next.Twist())
			}
			s = next
		}
	}
}

func TestGoldenDemoSequence(t *testing.T) {
	stages := []struct {
		sequence string
		perm     []int
		orient   []int
	}{
		{"R U R' U R U2 R' F R' F' U'", []int{3, 1, 5, 0, 4, 2, 6, 7}, []int{1, 1, 1, 1, 0, 2, 0, 0}},
		{"R' D' R", []int{4, 1, 5, 0, 6, 2, 7, 3}, []int{1, 1, 1, 1, 1, 2, 0, 2}},
		{"R U R' U R U2 R'", []int{5, 0, 4, 1, 6, 2, 7, 3}, []int{2, 1, 2, 2, 1, 2, 0, 2}},
		{"R' F R' B2 R F' R' B2 R2", []int{0, 4, 5, 1, 6, 2, 7, 3}, []int{1, 2, 2, 2, 1, 2, 0, 2}},
	}

	s := Identity()
	for _, stage := range stages {
		var err error
		s, err = ApplySequence(s, stage.sequence)
		if err != nil {
			t.Fatalf("%q failed: %v", stage.sequence, err)
		}
		assertState(t, stage.sequence, s, stage.perm, stage.orient)
	}

	if s.IsSolved() {
		t.Error("demo sequence does not solve the corners")
	}
}

func TestUnknownMoveLeavesStateUntouched(t *testing.T) {
	start := Identity()
	s, err := ApplyMove(start, "X")
	if !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("expected ErrUnknownMove, got %v", err)
	}
	if s != start || !start.IsSolved() {
		t.Error("failed move must not change the state")
	}

	for _, token := range []string{"r", "R3", "R''", "RU", "2", "'", "R2'"} {
		if _, err := ApplyMove(start, token); !errors.Is(err, ErrUnknownMove) {
			t.Errorf("%q: expected ErrUnknownMove, got %v", token, err)
		}
	}
}

func TestSequenceErrorReportsPrefix(t *testing.T) {
	start, err := ApplySequence(Identity(), "R U")
	if err != nil {
		t.Fatal(err)
	}

	s, err := ApplySequence(start, "F X U")
	var seqErr *SequenceError
	if !errors.As(err, &seqErr) {
		t.Fatalf("expected *SequenceError, got %v", err)
	}
	if seqErr.Index != 1 || seqErr.Token != "X" {
		t.Errorf("got index %d token %q, want 1 \"X\"", seqErr.Index, seqErr.Token)
	}
	if !errors.Is(err, ErrUnknownMove) {
		t.Error("SequenceError should unwrap to ErrUnknownMove")
	}

	want, _ := ApplyMove(start, "F")
	if s != want {
		t.Error("returned state should reflect the tokens before the failure")
	}

	again, _ := ApplySequence(Identity(), "R U")
	if start != again {
		t.Error("caller's state must not change")
	}
}

func TestRestrictedTableRejectsMissingFaces(t *testing.T) {
	table, err := NewTable(map[Move]Cycle{
		R:      standardCycles[R],
		RPrime: standardCycles[RPrime],
		U:      standardCycles[U],
		UPrime: standardCycles[UPrime],
		F:      standardCycles[F],
		FPrime: standardCycles[FPrime],
	})
	if err != nil {
		t.Fatal(err)
	}

	scrambled, err := table.ApplySequence(Identity(), "R U R' U R U2 R' F R' F' U'")
	if err != nil {
		t.Fatalf("scramble should only need R, U and F: %v", err)
	}

	s, err := table.ApplySequence(scrambled, "R' D' R")
	var seqErr *SequenceError
	if !errors.As(err, &seqErr) || seqErr.Index != 1 || seqErr.Token != "D'" {
		t.Fatalf("expected failure at D', got %v", err)
	}
	assertState(t, "prefix", s, []int{1, 2, 5, 0, 3, 4, 6, 7}, []int{0, 0, 1, 1, 2, 2, 0, 0})
}

func TestTypedApplyRejectsInvalidMove(t *testing.T) {
	_, err := Identity().Apply(R, Move{Face: "X", Turn: CW})
	var seqErr *SequenceError
	if !errors.As(err, &seqErr) || seqErr.Index != 1 {
		t.Fatalf("expected SequenceError at index 1, got %v", err)
	}

	if _, err := Identity().Apply(Move{Face: FaceR, Turn: 3}); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("expected ErrUnknownMove for turn 3, got %v", err)
	}
}

func TestTableConcurrentUse(t *testing.T) {
	done := make(chan State)
	for i := 0; i < 8; i++ {
		go func() {
			s, _ := ApplySequence(Identity(), "R U R' U' R U R' U' R U R' U' R U R' U' R U R' U' R U R' U'")
			done <- s
		}()
	}
	for i := 0; i < 8; i++ {
		if s := <-done; !s.IsSolved() {
			t.Error("concurrent simulation produced a wrong state")
		}
	}
}
