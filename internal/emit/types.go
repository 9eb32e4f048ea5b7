package emit

import "loom/internal/ast"

// watType implements the type-lowering table: compound types (list,
// tuple, function) are not lowered in this core and return "", the same
// as void — callers that need to distinguish "empty emission is fine"
// from "this type cannot be a global/param/result" check the TypeKind
// directly instead of the returned string.
func watType(b *ast.Builder, id ast.TypeID) string {
	if id == ast.NoTypeID {
		return ""
	}
	t := b.Types.Get(id)
	if t == nil {
		return ""
	}
	switch t.Kind {
	case ast.TypeInt, ast.TypeStr, ast.TypeBool, ast.TypeChar:
		return "i32"
	case ast.TypeFloat:
		return "f64"
	default:
		return ""
	}
}

// lowerableGlobalType reports whether kind can back a WAT global — the
// int/float/string/boolean/char row — as opposed to the unlowered
// compound types or void, whose representations are undefined at this
// core's level.
func lowerableGlobalType(kind ast.TypeKind) bool {
	switch kind {
	case ast.TypeInt, ast.TypeFloat, ast.TypeStr, ast.TypeBool, ast.TypeChar:
		return true
	default:
		return false
	}
}

// declType resolves the type a Decl's global/local slot should be
// lowered with: its own explicit type annotation if present, else the
// resolved type the type-checker attached to its initializer
// expression.
func declType(b *ast.Builder, decl ast.Decl) ast.TypeID {
	if decl.Type != ast.NoTypeID {
		return decl.Type
	}
	exprNode := b.Exprs.Get(decl.Expr)
	if exprNode != nil && exprNode.ResolvedType != nil {
		return *exprNode.ResolvedType
	}
	return ast.NoTypeID
}

func typeKindOf(b *ast.Builder, id ast.TypeID) ast.TypeKind {
	if id == ast.NoTypeID {
		return ast.TypeInvalid
	}
	t := b.Types.Get(id)
	if t == nil {
		return ast.TypeInvalid
	}
	return t.Kind
}
