package record

import (
	"sonet/internal/token"
)

// walkState carries the in-progress records through the token walk.
// Explicit slots instead of nullable shared fields: one current user, one
// current post, one current relation, plus the ancestry stack of open tag
// names.
type walkState struct {
	user *User
	post *Post
	rel  *Relation
	// container is the most recently opened tag name; it decides where
	// the next text token lands. Reset after every close tag and every
	// consumed text token.
	container string
	ancestry  []string
}

// Project walks the token stream and builds the record tree. The walk
// recovers silently from unbalanced input: a close tag that doesn't match
// the ancestry top simply skips the pop.
func Project(tokens []token.Token) Root {
	root := Root{Users: make([]User, 0)}
	st := walkState{}

	for i := range tokens {
		switch tokens[i].Kind {
		case token.OpenTag:
			st.enter(tokens[i])
		case token.CloseTag:
			st.leave(tokens[i], &root)
		case token.Text:
			st.text(tokens[i].Raw)
		}
	}

	return root
}

func (st *walkState) enter(tok token.Token) {
	switch tok.Name {
	case "user":
		var id *string
		if v, ok := tok.Attrs.Get("id"); ok {
			id = &v
		}
		st.user = newUser(id)
	case "post":
		if st.user != nil {
			st.post = newPost()
		}
	case "follower", "following":
		st.rel = &Relation{}
	}

	st.ancestry = append(st.ancestry, tok.Name)
	st.container = tok.Name
}

func (st *walkState) leave(tok token.Token, root *Root) {
	switch tok.Name {
	case "user":
		if st.user != nil {
			root.Users = append(root.Users, *st.user)
			st.user = nil
		}
	case "post":
		if st.user != nil && st.post != nil {
			st.user.Posts = append(st.user.Posts, *st.post)
			st.post = nil
		}
	case "follower":
		if st.user != nil && st.rel != nil {
			st.user.Followers = append(st.user.Followers, *st.rel)
			st.rel = nil
		}
	case "following":
		if st.user != nil && st.rel != nil {
			st.user.Followings = append(st.user.Followings, *st.rel)
			st.rel = nil
		}
	}

	// Pop только при совпадении вершины — иначе молча пропускаем.
	if n := len(st.ancestry); n > 0 && st.ancestry[n-1] == tok.Name {
		st.ancestry = st.ancestry[:n-1]
	}
	st.container = ""
}

func (st *walkState) text(content string) {
	defer func() { st.container = "" }()

	switch st.container {
	case "name":
		if st.user != nil && st.user.Name == nil {
			st.user.Name = &content
		}
	case "body", "content":
		if st.post != nil && st.post.Content == nil {
			st.post.Content = &content
		}
	case "topic":
		if st.post != nil {
			st.post.Topics = append(st.post.Topics, content)
		}
	case "id":
		// Чей это <id> — решает прародитель в ancestry, не соседство.
		parent := st.grandparent()
		switch parent {
		case "follower", "following":
			if st.rel != nil && st.rel.ID == nil {
				st.rel.ID = &content
			}
		case "user":
			// Атрибут id побеждает вложенный <id>.
			if st.user != nil && st.user.ID == nil {
				st.user.ID = &content
			}
		}
	}
}

// grandparent returns the tag enclosing the current container's parent:
// ancestry[-1] is the container itself, ancestry[-2] is what encloses it.
func (st *walkState) grandparent() string {
	if len(st.ancestry) < 2 {
		return ""
	}
	return st.ancestry[len(st.ancestry)-2]
}
