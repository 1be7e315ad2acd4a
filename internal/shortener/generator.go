package shortener

import "github.com/jaevor/go-nanoid"

// CodeGenerator produces short, URL-safe link codes. Generation never fails;
// uniqueness is enforced by the Repository and retried by the Service.
type CodeGenerator func() Code

const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewCodeGenerator creates a generator of alphanumeric codes of the given
// length.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	gen, err := nanoid.CustomASCII(codeAlphabet, length)
	if err != nil {
		return nil, err
	}

	return func() Code {
		return Code(gen())
	}, nil
}
