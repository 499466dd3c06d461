package sqlinline

const QHasRole = `--sql 5d0a94b6-7e12-4f58-8c3d-d21e60b97f42
select exists (
  select 1
  from user_roles
  where user_id = $1::uuid
    and role = $2::text
);
`
