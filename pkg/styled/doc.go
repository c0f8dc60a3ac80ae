// Package styled provides a small declarative language for composing
// attributed text. A caller describes what the text is as a tree of
// fragments and modifiers; rendering flattens the tree into
// [attributed.Text] values with concrete fonts and colors.
//
// # Fragments
//
// A [Fragment] renders to an ordered list of pieces under an ambient
// [Context]. The built-in fragments cover literal text, pre-built
// attributed values, ordered composition, and style modification:
//
//	f := styled.Group{
//	    styled.Bold(styled.Text("Status: ")),
//	    styled.Text(status),
//	    styled.If(warning != "", styled.Foreground(styled.Text(warning), attributed.ColorRed)),
//	}
//
// # Context flow
//
// The context flows down the tree by value. A modifier such as [Bold] or
// [Size] changes a copy of the context for its subtree only; siblings and
// the caller are unaffected. Leaves resolve the context they receive into
// concrete run attributes through the font manager.
//
// # Joining
//
// A [Joiner] concatenates the pieces of its content with a separator
// rendered against the Joiner's own ambient context:
//
//	text := styled.Join(styled.DefaultContext(), list, styled.Text(", "))
//
// [Flatten] is the common special case of joining with nothing between
// pieces. Both return a single [attributed.Text].
//
// Rendering is pure: fragments are plain values, and rendering the same
// tree under the same context always produces the same pieces. Fragments
// may be rendered concurrently from multiple goroutines.
package styled
