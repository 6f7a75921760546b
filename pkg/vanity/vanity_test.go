package vanity

import (
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		vanity string
		want   string
	}{
		{
			name:   "single word",
			vanity: "GATE",
			want:   "4283",
		},
		{
			name:   "word with Y",
			vanity: "HOLY",
			want:   "4659",
		},
		{
			name:   "hyphens dropped",
			vanity: "580-666-HOLY",
			want:   "5806664659",
		},
		{
			name:   "letters in exchange",
			vanity: "580-THE-GATE",
			want:   "5808434283",
		},
		{
			name:   "lowercase letters",
			vanity: "580-777-hell",
			want:   "5807774355",
		},
		{
			name:   "spaces dropped",
			vanity: "580 666 SOUL",
			want:   "5806667685",
		},
		{
			name:   "already numeric",
			vanity: "5806664283",
			want:   "5806664283",
		},
		{
			name:   "every keypad letter",
			vanity: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			want:   "22233344455566677778889999",
		},
		{
			name:   "zero and one pass through",
			vanity: "1-800-FLOWERS",
			want:   "18003569377",
		},
		{
			name:   "non ascii dropped",
			vanity: "Ünï-(580)",
			want:   "6580",
		},
		{
			name:   "empty",
			vanity: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.vanity); got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.vanity, got, tt.want)
			}
		})
	}
}

func TestTranslateLengthAndRange(t *testing.T) {
	inputs := []string{"HOLY", "PRAY", "hymn", "Sage2", "MYTH9", "TRUE", "real", "Z9a2"}

	for _, in := range inputs {
		got := Translate(in)
		if len(got) != len(in) {
			t.Errorf("Translate(%q) length = %d, want %d", in, len(got), len(in))
			continue
		}
		for i := 0; i < len(in); i++ {
			c := in[i]
			isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
			if isLetter && (got[i] < '2' || got[i] > '9') {
				t.Errorf("Translate(%q)[%d] = %q, want a digit in 2-9", in, i, got[i])
			}
			if !isLetter && got[i] != c {
				t.Errorf("Translate(%q)[%d] = %q, want %q", in, i, got[i], c)
			}
		}
	}
}

func TestTranslateIdempotent(t *testing.T) {
	for _, in := range []string{"5806664283", "580-666-GATE", "THE-GATE"} {
		once := Translate(in)
		if twice := Translate(once); twice != once {
			t.Errorf("Translate(Translate(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestIsNumberAndPrefix(t *testing.T) {
	tests := []struct {
		in         string
		wantNumber bool
		wantPrefix bool
	}{
		{"5806664659", true, false},
		{"580666", false, true},
		{"580-666", false, false},
		{"58066646590", false, false},
		{"580666465a", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := IsNumber(tt.in); got != tt.wantNumber {
			t.Errorf("IsNumber(%q) = %v, want %v", tt.in, got, tt.wantNumber)
		}
		if got := IsPrefix(tt.in); got != tt.wantPrefix {
			t.Errorf("IsPrefix(%q) = %v, want %v", tt.in, got, tt.wantPrefix)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{
			name:   "bare ten digits",
			number: "5806664659",
			want:   "580-666-4659",
		},
		{
			name:   "e164 from provider",
			number: "+15806664659",
			want:   "580-666-4659",
		},
		{
			name:   "not a phone number",
			number: "n/a",
			want:   "n/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.number); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestAreaCode(t *testing.T) {
	if got := AreaCode("580666"); got != "580" {
		t.Errorf("AreaCode() = %q, want %q", got, "580")
	}
	if got := AreaCode("58"); got != "58" {
		t.Errorf("AreaCode() = %q, want %q", got, "58")
	}
}
