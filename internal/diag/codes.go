package diag

import "fmt"

// Code is a compact, stable diagnostic identifier. The numeric ranges map
// to phases, mirrored by the prefixed string form of ID.
type Code uint16

const (
	UnknownCode Code = 0

	// Type checking (3000-3999)
	TypInfo                   Code = 3000
	TypMismatch               Code = 3001
	TypOwnershipMismatch      Code = 3002
	TypTraitNotImplemented    Code = 3003
	TypRequirementUnmet       Code = 3004
	TypWrongTypeArgumentCount Code = 3005
	TypUnresolvedPlaceholder  Code = 3006
	TypSelfOutsideMethod      Code = 3007
	TypRecursionLimit         Code = 3008
	TypDuplicateField         Code = 3009
	TypDuplicateMethod        Code = 3010
	TypDuplicateVariant       Code = 3011
	TypDuplicateTypeParameter Code = 3012
	TypUnknownModuleMember    Code = 3013
	TypPrivateModuleMember    Code = 3014
	TypClosureMismatch        Code = 3015
	TypThrowNotDeclared       Code = 3016
	TypNotGeneric             Code = 3017
	TypBoundUnsatisfied       Code = 3018
	TypImmutableBorrow        Code = 3019
	TypUniAliased             Code = 3020

	// I/O (4000-4999)
	IOLoadFileError Code = 4001

	// Project / manifest (5000-5999)
	ProjInfo            Code = 5000
	ProjManifestMissing Code = 5001
	ProjManifestInvalid Code = 5002
	ProjDuplicateModule Code = 5003
	ProjMissingModule   Code = 5004
	ProjSnapshotInvalid Code = 5005
	ProjSnapshotStale   Code = 5006
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	TypInfo:                   "Type information",
	TypMismatch:               "Type mismatch",
	TypOwnershipMismatch:      "Ownership mismatch",
	TypTraitNotImplemented:    "Trait not implemented",
	TypRequirementUnmet:       "Type parameter requirement not met",
	TypWrongTypeArgumentCount: "Wrong number of type arguments",
	TypUnresolvedPlaceholder:  "Type could not be inferred",
	TypSelfOutsideMethod:      "Self used outside a method",
	TypRecursionLimit:         "Type nesting exceeds the recursion limit",
	TypDuplicateField:         "Duplicate field",
	TypDuplicateMethod:        "Duplicate method",
	TypDuplicateVariant:       "Duplicate enum variant",
	TypDuplicateTypeParameter: "Duplicate type parameter",
	TypUnknownModuleMember:    "Module member not found",
	TypPrivateModuleMember:    "Module member is not public",
	TypClosureMismatch:        "Closure signature mismatch",
	TypThrowNotDeclared:       "Thrown type is not declared",
	TypNotGeneric:             "Type arguments on a non-generic type",
	TypBoundUnsatisfied:       "Bounded implementation does not apply",
	TypImmutableBorrow:        "Cannot take a mutable borrow of an immutable value",
	TypUniAliased:             "Unique value would be aliased",
	IOLoadFileError:           "I/O load file error",
	ProjInfo:                  "Project information",
	ProjManifestMissing:       "Project manifest not found",
	ProjManifestInvalid:       "Invalid project manifest",
	ProjDuplicateModule:       "Duplicate module definition",
	ProjMissingModule:         "Missing module",
	ProjSnapshotInvalid:       "Invalid type snapshot",
	ProjSnapshotStale:         "Stale type snapshot",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
