// Package coalesce provides fallbacks for empty strings.
//
// Every helper branches on one condition, v == "", and works with any string
// type (~string). Fallbacks are only evaluated in the empty case: producer
// functions are not called and channels are not read when v has content.
//
//	name := coalesce.OrDefault(user.Nickname, "anonymous")
//
//	title := coalesce.WhenEmpty(post.Title, func() string {
//		return firstLine(post.Body)
//	})
//
// The Async variants take a context and block only in the empty case:
//
//	avatar, err := coalesce.WhenEmptyAsync(ctx, user.Avatar, fetchGravatar)
package coalesce
