package resolve

import (
	gerrors "errors"

	"sola/internal/ast"
)

var errLinearization = gerrors.New("linearization impossible")

// linearize computes the C3 linearization of a contract's inheritance
// graph: the contract itself first, then its ancestors in a stable total
// order, most-derived first. The result is memoized on the contract's
// annotation record, so the chain each check iterates is computed once.
//
// Like the merge in method-resolution-order literature, the direct base
// list is processed in reverse: in a Sola inheritance list the bases are
// written most-base-like first.
func linearize(contract *ast.Contract, visiting map[*ast.Contract]bool) ([]*ast.Contract, error) {
	if lin := contract.Annotation().Linearized; len(lin) > 0 {
		return lin, nil
	}
	if visiting[contract] {
		return nil, errLinearization
	}
	visiting[contract] = true
	defer delete(visiting, contract)

	var sequences [][]*ast.Contract
	var directBases []*ast.Contract
	for i := len(contract.Bases) - 1; i >= 0; i-- {
		base := contract.Bases[i].Base()
		if base == nil {
			// Unresolved base; the resolver already reported it.
			continue
		}
		if base == contract {
			return nil, errLinearization
		}
		baseLin, err := linearize(base, visiting)
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, baseLin)
		directBases = append(directBases, base)
	}
	if len(directBases) > 0 {
		sequences = append(sequences, directBases)
	}

	merged, ok := c3Merge(sequences)
	if !ok {
		return nil, errLinearization
	}

	result := append([]*ast.Contract{contract}, merged...)
	contract.Annotation().Linearized = result
	return result, nil
}

// c3Merge repeatedly takes a candidate head that appears in no sequence's
// tail. Failure to find one means the inheritance order is ambiguous.
func c3Merge(sequences [][]*ast.Contract) ([]*ast.Contract, bool) {
	var result []*ast.Contract

	remaining := make([][]*ast.Contract, 0, len(sequences))
	for _, seq := range sequences {
		if len(seq) > 0 {
			remaining = append(remaining, seq)
		}
	}

	for len(remaining) > 0 {
		candidate := pickHead(remaining)
		if candidate == nil {
			return nil, false
		}
		result = append(result, candidate)

		next := remaining[:0]
		for _, seq := range remaining {
			if len(seq) > 0 && seq[0] == candidate {
				seq = seq[1:]
			}
			if len(seq) > 0 {
				next = append(next, seq)
			}
		}
		remaining = next
	}
	return result, true
}

func pickHead(sequences [][]*ast.Contract) *ast.Contract {
	for _, seq := range sequences {
		head := seq[0]
		if !appearsInTail(head, sequences) {
			return head
		}
	}
	return nil
}

func appearsInTail(contract *ast.Contract, sequences [][]*ast.Contract) bool {
	for _, seq := range sequences {
		for _, c := range seq[1:] {
			if c == contract {
				return true
			}
		}
	}
	return false
}
