// Package record projects the canonical token stream into the nested
// user/post/topic/relation structure of a social-network export.
package record

// Root is the projection output: the whole document as one record tree.
type Root struct {
	Users []User `json:"users"`
}

// User is one <user> element. ID and Name stay null until first set;
// once set they are never overwritten (first writer wins).
type User struct {
	ID         *string    `json:"id"`
	Name       *string    `json:"name"`
	Posts      []Post     `json:"posts"`
	Followers  []Relation `json:"followers"`
	Followings []Relation `json:"followings"`
}

// Post is one <post> element inside a user.
type Post struct {
	Content *string  `json:"content"`
	Topics  []string `json:"topics"`
}

// Relation is one <follower> or <following> element. An element carrying
// no <id> child marshals as an empty object.
type Relation struct {
	ID *string `json:"id,omitempty"`
}

func newUser(id *string) *User {
	return &User{
		ID:         id,
		Posts:      make([]Post, 0),
		Followers:  make([]Relation, 0),
		Followings: make([]Relation, 0),
	}
}

func newPost() *Post {
	return &Post{
		Topics: make([]string, 0),
	}
}
