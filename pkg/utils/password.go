package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword ทำ bcrypt hash (salt สุ่มใหม่ทุกครั้ง hash ซ้ำจะได้ค่าไม่เหมือนเดิม)
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword เทียบ plaintext กับ hash ที่เก็บไว้
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
