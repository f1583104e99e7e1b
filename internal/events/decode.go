package events

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Arjunram-pal/portfolio/internal/siteapi"
)

// Decode builds a typed event from its dispatch name and the string data the
// browser sends along (the data-* attributes of the control plus form values).
func Decode(name string, data map[string]string) (Event, error) {
	switch name {
	case LoadBlogs{}.Name():
		return LoadBlogs{}, nil
	case LoadPosts{}.Name():
		return LoadPosts{}, nil
	case SubmitContact{}.Name():
		return SubmitContact{Message: siteapi.ContactMessage{
			Fullname: data["fullname"],
			Email:    data["email"],
			Message:  data["message"],
		}}, nil
	case SaveBlog{}.Name():
		ev := SaveBlog{
			Title:    data["title"],
			Category: data["category"],
			Content:  data["content"],
		}
		if raw := strings.TrimSpace(data["blogId"]); raw != "" {
			id, err := parseID("blogId", raw)
			if err != nil {
				return nil, err
			}
			ev.ID = &id
		}
		return ev, nil
	case EditBlog{}.Name():
		id, err := parseID("blogId", data["blogId"])
		if err != nil {
			return nil, err
		}
		return EditBlog{ID: id}, nil
	case DeleteBlog{}.Name():
		id, err := parseID("blogId", data["blogId"])
		if err != nil {
			return nil, err
		}
		confirmed, _ := strconv.ParseBool(data["confirmed"])
		return DeleteBlog{ID: id, Confirmed: confirmed}, nil
	case OpenBlog{}.Name():
		id, err := parseID("blogId", data["blogId"])
		if err != nil {
			return nil, err
		}
		return OpenBlog{ID: id}, nil
	case CreatePost{}.Name():
		return CreatePost{Message: data["message"]}, nil
	case SubmitReply{}.Name():
		id, err := parseID("postId", data["postId"])
		if err != nil {
			return nil, err
		}
		return SubmitReply{PostID: id, Message: data["message"]}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, name)
	}
}

func parseID(key, raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s [%s]: %w", key, raw, err)
	}
	return id, nil
}
