// Package gen builds variant tables of parsed enums and writes their code.
//
// Identifier Allocation
// =====================
//
// Every identifier an enum generates is claimed in the package namespace
// while building its [Table]:
//
//   - The type name is the name of the directive variable. The variable is
//     erased at generation, so its name is released before building.
//
//   - Constants, the parse function, and the values function are visible to
//     users. They cannot be renamed, so a conflict is an error.
//
//   - Lookup tables are private to the generated code. A conflict renames
//     them with a numbering suffix.
//
// Methods are declared on the new type and cannot conflict with package-level
// names. But a method declared on the type in a file without the strenum build
// constraint would collide after generation, so such methods are rejected too.
package gen
