// Command hashpw 输出管理员密码的 bcrypt 哈希，用于填写 admin.password_hash。
package main

import (
	"fmt"
	"os"

	"amassah-lodge-go/pkg/hash"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	hashed, err := hash.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}
	fmt.Println(hashed)
}
