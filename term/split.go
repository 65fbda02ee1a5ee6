package term

// Binder is one entry in the abstractor prefix peeled off the front of an
// eta-long term by Split: a bound name together with its simple type.
type Binder struct {
	Name string
	Type Type
}

// Binders is the ordered abstractor prefix, outermost binder first.
type Binders []Binder

// TypingContext maps constant names to their simple types. It is the only
// place arity information for rigid constants is looked up.
type TypingContext map[string]Type

// Split deconstructs an eta-long term into its binder prefix, head, and
// ordered argument spine. The argument list is in left-to-right application
// order: for f a b c, Split returns args = [a, b, c].
//
// If, after peeling the abstractor chain and the application spine, the
// remaining head is itself an Abs, t was not in eta-long form; this is a
// programmer error and Split panics rather than returning a degraded result.
func Split(t Term) (binders Binders, head Term, args []Term) {
	for {
		abs, ok := t.(*Abs)
		if !ok {
			break
		}
		binders = append(binders, Binder{Name: abs.Name, Type: abs.Type})
		t = abs.Body
	}

	var spine []Term
	for {
		app, ok := t.(*App)
		if !ok {
			break
		}
		spine = append([]Term{app.Arg}, spine...)
		t = app.Fun
	}

	switch t.(type) {
	case *Meta, *Var:
		return binders, t, spine
	default:
		panic("term: Split: term is not in eta-long form (head is not Var or Meta)")
	}
}

// Combine is the inverse of Split: it rebuilds a well-formed term from a
// binder prefix, a head, and an argument spine.
func Combine(binders Binders, head Term, args []Term) Term {
	body := head
	for _, a := range args {
		body = &App{Fun: body, Arg: a}
	}
	for i := len(binders) - 1; i >= 0; i-- {
		body = &Abs{Name: binders[i].Name, Type: binders[i].Type, Body: body}
	}
	return body
}

// BindingIndex returns the position of v within binders (0 = outermost bound
// name introduced), or ok=false if v does not name any binder in the prefix.
//
// An early revision of this helper (see spec notes) iterated the prefix
// without advancing past the first entry; this version walks the full
// prefix, which is what the loop's shape always intended.
func BindingIndex(v *Var, binders Binders) (index int, ok bool) {
	for i, b := range binders {
		if b.Name == v.Name {
			return i, true
		}
	}
	return 0, false
}

// IsRigid reports whether t's head, after Split, is a Var rather than a Meta.
func IsRigid(t Term) bool {
	_, head, _ := Split(t)
	_, isMeta := head.(*Meta)
	return !isMeta
}

// EqualHeadInContext decides whether two rigid (Var-headed) terms' heads
// denote the same thing, given the binder prefixes each head was split
// under and the ambient typing context. Two Var heads are equal only when:
//
//   - both are bound in their respective prefixes, at the same position
//     (this is what makes e.g. λx. x and λy. y have "the same" rigid head
//     even though x and y are different names -- alpha equivalence), or
//   - neither is locally bound, they share the same name, and that name is
//     declared in the typing context (a shared global constant).
//
// A bound name is never equal to a same-named typing-context constant: the
// two binder prefixes are independent scopes.
func EqualHeadInContext(l, r Term, bindersL, bindersR Binders, ctx TypingContext) bool {
	lv, lok := l.(*Var)
	rv, rok := r.(*Var)
	if !lok || !rok {
		return false
	}
	li, lBound := BindingIndex(lv, bindersL)
	ri, rBound := BindingIndex(rv, bindersR)
	if lBound || rBound {
		return lBound && rBound && li == ri
	}
	if lv.Name != rv.Name {
		return false
	}
	_, declared := ctx[lv.Name]
	return declared
}
