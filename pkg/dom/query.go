package dom

import "golang.org/x/net/html"

// Find returns the first node in root's subtree (root included) matching
// pred, in depth-first document order, or nil.
func Find(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if pred(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in root's subtree (root included) matching
// pred, in depth-first document order.
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	if root == nil {
		return found
	}
	if pred(root) {
		found = append(found, root)
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		found = append(found, FindAll(c, pred)...)
	}
	return found
}

// ByTag matches element nodes with the given tag name.
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// ByClass matches element nodes carrying the class name.
func ByClass(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && HasClass(n, name)
	}
}
