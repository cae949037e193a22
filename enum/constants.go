package enum

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the function name for context.
//-----------------------------------------------------------------------------

const (
	// MethodListsIncreasing is the canonical name for ListsIncreasing.
	MethodListsIncreasing = "ListsIncreasing"
	// MethodListsShortlexAtLeast is the canonical name for ListsShortlexAtLeast.
	MethodListsShortlexAtLeast = "ListsShortlexAtLeast"
	// MethodStringsIncreasing is the canonical name for StringsIncreasing.
	MethodStringsIncreasing = "StringsIncreasing"
	// MethodStringsShortlexAtLeast is the canonical name for StringsShortlexAtLeast.
	MethodStringsShortlexAtLeast = "StringsShortlexAtLeast"
	// MethodLists is the canonical name for Lists.
	MethodLists = "Lists"
	// MethodListsAtLeast is the canonical name for ListsAtLeast.
	MethodListsAtLeast = "ListsAtLeast"
	// MethodStrings is the canonical name for Strings.
	MethodStrings = "Strings"
	// MethodStringsAtLeast is the canonical name for StringsAtLeast.
	MethodStringsAtLeast = "StringsAtLeast"
)

// MinLength is the smallest list length any enumerator accepts; length 0 is
// the single empty list.
const MinLength = 0
