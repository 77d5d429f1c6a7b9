package follow

// IsSelfFollow сообщает, пытается ли пользователь подписаться сам на себя.
// Такая подписка - тихий no-op, а не ошибка.
func IsSelfFollow(userID, authorID uint) bool {
	return userID == authorID
}
