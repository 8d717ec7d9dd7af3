package utils

import "testing"

// 测试内容：验证 slug 生成规则（小写、折叠连字符、去首尾）。
func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Holiday Photos", "holiday-photos"},
		{"  My--Album!! 2024  ", "my-album-2024"},
		{"UPPER", "upper"},
		{"a.b.c", "a-b-c"},
		{"---", ""},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) 期望 %q，实际为 %q", tc.in, tc.want, got)
		}
	}
}

// 测试内容：验证 slug 生成对同一输入是确定性的，且对已生成的 slug 幂等。
func TestSlugify_DeterministicAndIdempotent(t *testing.T) {
	name := "Some Folder Name"
	first := Slugify(name)
	if second := Slugify(name); second != first {
		t.Fatalf("期望确定性结果 %q，实际为 %q", first, second)
	}
	if again := Slugify(first); again != first {
		t.Fatalf("期望幂等：Slugify(%q) = %q，实际为 %q", first, first, again)
	}
}
