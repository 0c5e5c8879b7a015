package diagnostics

import "testing"

func TestPrimarySpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		msg      Message
		expected string // file path of the expected span, "" for nil
	}{
		{
			name: "marked primary wins",
			msg: Message{Spans: []Span{
				{FilePath: "a.rs"},
				{FilePath: "b.rs", IsPrimary: true},
			}},
			expected: "b.rs",
		},
		{
			name: "first span by convention when none marked",
			msg: Message{Spans: []Span{
				{FilePath: "a.rs"},
				{FilePath: "b.rs"},
			}},
			expected: "a.rs",
		},
		{
			name:     "no spans",
			msg:      Message{},
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			span := tt.msg.PrimarySpan()
			if tt.expected == "" {
				if span != nil {
					t.Fatalf("PrimarySpan() = %+v, want nil", span)
				}
				return
			}
			if span == nil {
				t.Fatal("PrimarySpan() = nil, want span")
			}
			if span.FilePath != tt.expected {
				t.Errorf("PrimarySpan().FilePath = %q, want %q", span.FilePath, tt.expected)
			}
		})
	}
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	msg := Message{
		Text: "root",
		Children: []Message{
			{Text: "a", Children: []Message{{Text: "a1"}}},
			{Text: "b"},
		},
	}

	var visited []string
	msg.Walk(func(m *Message) {
		visited = append(visited, m.Text)
	})

	expected := []string{"root", "a", "a1", "b"}
	if len(visited) != len(expected) {
		t.Fatalf("Walk visited %v, want %v", visited, expected)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("Walk order[%d] = %q, want %q", i, visited[i], expected[i])
		}
	}
}

func TestHasError(t *testing.T) {
	t.Parallel()

	withNestedError := Message{
		Severity: SeverityWarning,
		Children: []Message{
			{Severity: SeverityNote},
			{Severity: SeverityNote, Children: []Message{{Severity: SeverityError}}},
		},
	}
	if !withNestedError.HasError() {
		t.Error("HasError() = false for message with deeply nested error")
	}

	clean := Message{
		Severity: SeverityWarning,
		Children: []Message{{Severity: SeverityHelp}},
	}
	if clean.HasError() {
		t.Error("HasError() = true for message without errors")
	}
}
