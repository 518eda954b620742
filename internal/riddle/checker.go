package riddle

import (
	"crypto/sha1"
	"encoding/hex"
)

// Verdict is the outcome of comparing a guess against a riddle's answer.
type Verdict struct {
	AnswerHash string
	GuessHash  string
	Solved     bool
}

// Digest returns the lowercase hex SHA-1 of text.
func Digest(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Check hashes answer and guess and reports whether the digests match.
// The guess is used as-is: no trimming, no case folding.
func Check(answer, guess string) Verdict {
	answerHash := Digest(answer)
	guessHash := Digest(guess)
	return Verdict{
		AnswerHash: answerHash,
		GuessHash:  guessHash,
		Solved:     answerHash == guessHash,
	}
}

// Check runs the checker against this riddle's answer.
func (r Riddle) Check(guess string) Verdict {
	return Check(r.Answer, guess)
}
