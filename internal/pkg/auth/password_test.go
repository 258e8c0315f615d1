package auth

import "testing"

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{
			name:     "known digest",
			password: "admin123",
			want:     "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
		},
		{
			name:     "another known digest",
			password: "secret",
			want:     "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		},
		{
			name:     "empty password still hashes",
			password: "",
			want:     "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HashPassword(tt.password)
			if got != tt.want {
				t.Errorf("HashPassword(%q) = %s, want %s", tt.password, got, tt.want)
			}
		})
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	if HashPassword("repeatable") != HashPassword("repeatable") {
		t.Error("HashPassword is not deterministic for the same input")
	}
}
